package usecase

import (
	"context"
	"fmt"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// ShowConfigTemplateInput contains the input for the ShowConfigTemplate use case.
type ShowConfigTemplateInput struct {
	Config *domain.Config // Values rendered into the template (nil = defaults)
}

// ShowConfigTemplateOutput contains the output of the ShowConfigTemplate use case.
type ShowConfigTemplateOutput struct {
	Template string // Configuration template content
}

// ShowConfigTemplate renders a configuration template without touching any file.
type ShowConfigTemplate struct{}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate() *ShowConfigTemplate {
	return &ShowConfigTemplate{}
}

// Execute renders the template.
func (uc *ShowConfigTemplate) Execute(_ context.Context, in ShowConfigTemplateInput) (*ShowConfigTemplateOutput, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	tmpl, err := domain.RenderConfigTemplate(cfg)
	if err != nil {
		return nil, fmt.Errorf("render config template: %w", err)
	}
	return &ShowConfigTemplateOutput{Template: tmpl}, nil
}
