package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/traitcast"
	"github.com/vk/traitcast/internal/config"
	"github.com/vk/traitcast/internal/ctxlog"
	"github.com/vk/traitcast/internal/identity"
)

// Validate performs a strict parity check between manifest declarations and
// the casts actually registered. Every declared cast must exist in the table
// (with a thread-safe caster when the manifest demands one), and every
// registration for a concrete type that has a manifest must be declared
// there. Types without a manifest entry are left alone; manifests are opt-in
// per type.
func Validate(ctx context.Context, model *config.Model, regs []traitcast.Registration) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	type pair struct{ concrete, target string }
	registered := make(map[pair]traitcast.Registration, len(regs))
	for _, reg := range regs {
		registered[pair{identity.Name(reg.Concrete), identity.Name(reg.Target)}] = reg
	}

	// Declared but not registered, or registered without the demanded bound.
	for name, def := range model.Casts {
		for _, target := range def.Targets {
			reg, ok := registered[pair{name, target}]
			if !ok {
				errs = append(errs, fmt.Sprintf("cast '%s': manifest declares target '%s', but no such cast is registered", name, target))
				continue
			}
			if def.ThreadSafe && !reg.ThreadSafe {
				errs = append(errs, fmt.Sprintf("cast '%s' -> '%s': manifest requires a thread-safe caster, but the registration is not marked thread-safe", name, target))
			}
		}
	}

	// Registered but missing from the type's manifest.
	for _, reg := range regs {
		concrete := identity.Name(reg.Concrete)
		def, declared := model.Casts[concrete]
		if !declared {
			logger.Debug("Registration has no manifest entry.", "concrete", concrete, "target", identity.Name(reg.Target))
			continue
		}
		target := identity.Name(reg.Target)
		if !def.DeclaresTarget(target) {
			errs = append(errs, fmt.Sprintf("cast '%s': registration targets '%s', which is not declared in the manifest (%s)", concrete, target, def.Source))
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
