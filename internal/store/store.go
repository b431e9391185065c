// Package store provides loading and saving of the category override data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"mrahman/sms-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading and saving of category override data.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for category-related data. The file name
// may be relative; it is resolved against the standard config locations.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, and ~/.config/sms-csv/.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "sms-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories reads the category overrides from the YAML file. A missing
// file is not an error; it yields an empty override list.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	path, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		log.WithField("file", s.CategoriesFile).Debug("No categories file found, using built-in rules only")
		return nil, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config discovery
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(config.Categories),
	}).Debug("Loaded category overrides")
	return config.Categories, nil
}

// SaveCategories writes the category overrides back to the YAML file,
// creating the directory when needed.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	path := s.CategoriesFile
	if existing, err := s.FindConfigFile(s.CategoriesFile); err == nil {
		path = existing
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.WithField("file", path).Debug("Saved category overrides")
	return nil
}
