package domain

import "fmt"

// ConfigProfile is a named set of local settings from the profiles file
type ConfigProfile struct {
	Name         string
	DatabasePath string
	Currency     string
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.DatabasePath)
}
