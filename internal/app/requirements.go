package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"urf-recipe/internal/core"
	"urf-recipe/internal/types"
)

// installSystemTools makes a single attempt to install every optional tool
// the recipe wants on this host. Failures are logged and never returned.
func (s Service) installSystemTools(ctx context.Context, sess session) {
	for _, tool := range core.ToolsForHost(sess.recipe, sess.host) {
		if err := s.ensureSystemTool(ctx, tool); err != nil {
			log.Ctx(ctx).Warn().
				Err(err).
				Str("tool", tool.Name).
				Msgf("Could not install %s", tool.Name)
		}
	}
}

func (s Service) ensureSystemTool(ctx context.Context, tool types.SystemTool) error {
	logger := log.Ctx(ctx)
	version, installed, err := s.System.Installed(ctx, tool.Name)
	switch {
	case err != nil:
		logger.Debug().Err(err).Str("tool", tool.Name).Msg("could not query tool, installing")
	case installed:
		ok, err := core.ToolSatisfied(tool, version)
		if err != nil {
			logger.Debug().Err(err).Str("tool", tool.Name).Str("version", version).Msg("could not compare tool version")
		}
		if ok {
			logger.Debug().Str("tool", tool.Name).Str("version", version).Msg("system tool present")
			return nil
		}
		logger.Info().
			Str("tool", tool.Name).
			Str("version", version).
			Str("min_version", tool.MinVersion).
			Msg("system tool too old")
	}
	logger.Info().Str("tool", tool.Name).Msg("installing system tool")
	return s.System.Install(ctx, tool.Name, tool.Update)
}

// resolveRequirements looks every requirement up in the package cache.
// Requirements that are not cached are left to the system.
func (s Service) resolveRequirements(ctx context.Context, sess session) ([]types.ResolvedRequirement, error) {
	logger := log.Ctx(ctx)
	resolved := make([]types.ResolvedRequirement, 0, len(sess.requirements))
	for _, req := range sess.requirements {
		folder, info, found, err := s.Cache.Lookup(req.Name, req.Version)
		if err != nil {
			return nil, err
		}
		entry := types.ResolvedRequirement{Requirement: req}
		if found {
			entry.Folder = folder
			entry.Info = info
			logger.Debug().Str("requirement", req.String()).Str("folder", folder).Msg("resolved from cache")
		} else {
			logger.Info().Str("requirement", req.String()).Msg("resolved from system")
		}
		resolved = append(resolved, entry)
	}
	return resolved, nil
}
