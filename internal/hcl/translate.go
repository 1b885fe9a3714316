package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/traitcast/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateFile converts all cast blocks of one parsed manifest file into the
// agnostic model, rejecting duplicate declarations for the same concrete type.
func (l *Loader) translateFile(_ context.Context, model *config.Model, file *hcl.File, source string) error {
	content, diags := file.Body.Content(manifestSchema)
	if diags.HasErrors() {
		return fmt.Errorf("invalid manifest %s: %w", source, diags)
	}

	for _, block := range content.Blocks {
		def, err := l.translateCast(block, source)
		if err != nil {
			return err
		}
		if prev, exists := model.Casts[def.Concrete]; exists {
			return fmt.Errorf("duplicate cast declaration for %q in %s (first declared in %s)",
				def.Concrete, source, prev.Source)
		}
		model.Casts[def.Concrete] = def
	}
	return nil
}

// translateCast converts a single `cast` block into a CastDefinition.
func (l *Loader) translateCast(block *hcl.Block, source string) (*config.CastDefinition, error) {
	def := &config.CastDefinition{
		Concrete: block.Labels[0],
		Source:   source,
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid cast block %q in %s: %w", def.Concrete, source, diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("cast %q, attribute %q: %w", def.Concrete, name, diags)
		}

		var err error
		switch name {
		case "description":
			err = decode(val, cty.String, &def.Description)
		case "to":
			err = decode(val, cty.List(cty.String), &def.Targets)
		case "thread_safe":
			err = decode(val, cty.Bool, &def.ThreadSafe)
		default:
			err = fmt.Errorf("unsupported attribute %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("cast %q in %s: %w", def.Concrete, source, err)
		}
	}

	if len(def.Targets) == 0 {
		return nil, fmt.Errorf("cast %q in %s declares no targets", def.Concrete, source)
	}
	return def, nil
}

// decode converts an evaluated HCL value to the required cty type and binds
// it to the Go target.
func decode(val cty.Value, want cty.Type, goVal any) error {
	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w",
			val.Type().FriendlyName(), want.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, goVal)
}
