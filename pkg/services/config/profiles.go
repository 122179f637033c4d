package config

import (
	"context"
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	DefaultFileName = ".offeratlascfg"
	DefaultProfile  = "DEFAULT"
	DefaultCurrency = "EUR"
)

type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	GetProfile(ctx context.Context, name string) (*domain.ConfigProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// DefaultPath is the profiles file in the home directory of the current user
func DefaultPath() string {
	usr, err := user.Current()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(usr.HomeDir, DefaultFileName)
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, toProfile(section))
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*domain.ConfigProfile, error) {
	if name == "" {
		name = DefaultProfile
	}

	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := toProfile(section)
	if profile.DatabasePath == "" {
		return nil, fmt.Errorf("profile %s: database_path is not set", name)
	}
	return &profile, nil
}

func toProfile(section *ini.Section) domain.ConfigProfile {
	return domain.ConfigProfile{
		Name:         section.Name(),
		DatabasePath: section.Key("database_path").String(),
		Currency:     section.Key("currency").MustString(DefaultCurrency),
	}
}
