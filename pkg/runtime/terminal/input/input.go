package input

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a forecast document holding an offer, its catalog and category settings.
// JSON documents are accepted as well.
func Load(path string) (*api.ForecastRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) (*api.ForecastRequest, error) {
	var doc api.ForecastRequest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse input document: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid input document: %w", err)
	}
	return &doc, nil
}
