package prompt

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var resourcePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Answers holds the generation settings collected interactively. Fields that
// are already set are not asked again.
type Answers struct {
	Server     string
	Resource   string
	ModuleType string
}

// Ask fills the empty fields of answers. moduleTypes lists the selectable
// module types; the first one is the default. askServer controls whether a
// missing server is prompted for.
func Ask(ctx context.Context, driver Driver, answers *Answers, moduleTypes []string, askServer bool) error {
	if driver == nil {
		return errors.New("prompt: driver is required")
	}
	if answers == nil {
		return errors.New("prompt: answers are required")
	}

	if askServer && answers.Server == "" {
		server, err := driver.Input(ctx, InputConfig{
			Message:   "Foreman server URL",
			Help:      "Base URL serving the apipie documentation, e.g. https://foreman.example.com",
			Validator: ValidateServer,
		})
		if err != nil {
			return err
		}
		answers.Server = strings.TrimSpace(server)
	}

	if answers.Resource == "" {
		resource, err := driver.Input(ctx, InputConfig{
			Message:   "Resource name (singular)",
			Help:      "Lower-case snake_case name, e.g. compute_resource",
			Validator: ValidateResource,
		})
		if err != nil {
			return err
		}
		answers.Resource = strings.TrimSpace(resource)
	}

	if answers.ModuleType == "" {
		if len(moduleTypes) == 0 {
			return ErrNoChoices
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message: "Module type",
			Options: moduleTypes,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(moduleTypes) {
			return fmt.Errorf("prompt: invalid module type selection %d", idx)
		}
		answers.ModuleType = moduleTypes[idx]
	}
	return nil
}

// ValidateResource accepts lower-case snake_case identifiers.
func ValidateResource(value string) error {
	if !resourcePattern.MatchString(strings.TrimSpace(value)) {
		return fmt.Errorf("%q is not a snake_case resource name", value)
	}
	return nil
}

// ValidateServer accepts http and https URLs.
func ValidateServer(value string) error {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("%q must start with http:// or https://", value)
	}
	return nil
}
