// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sazon/internal/config"
	"github.com/thenoetrevino/sazon/internal/models"
)

// RestrictionFlag returns the flag name for a restriction, e.g. "gluten-free"
func RestrictionFlag(r models.Restriction) string {
	switch r {
	case models.Vegetarian:
		return "vegetarian"
	case models.Vegan:
		return "vegan"
	case models.GlutenFree:
		return "gluten-free"
	case models.DairyFree:
		return "dairy-free"
	default:
		return ""
	}
}

// RestrictionListFlag is the repeatable by-name restriction flag
const RestrictionListFlag = "restriction"

// AddRestrictionFlags registers one bool flag per restriction plus the
// repeatable --restriction flag
func AddRestrictionFlags(cmd *cobra.Command) {
	for _, r := range models.AllRestrictions {
		cmd.Flags().Bool(RestrictionFlag(r), false, fmt.Sprintf("Mark the recipe as %s", r.Phrase()))
	}
	cmd.Flags().StringSlice(RestrictionListFlag, nil,
		"Restriction by name, repeatable (vegetarian, vegan, gluten-free, dairy-free)")
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseRestrictions reads the restriction flags into a DietaryRestrictions value.
// Names given to --restriction add to the bool flags; an unknown name is an error.
func (p *FlagParser) ParseRestrictions() (models.DietaryRestrictions, error) {
	var restrictions models.DietaryRestrictions
	for _, r := range models.AllRestrictions {
		name := RestrictionFlag(r)
		enabled, err := p.cmd.Flags().GetBool(name)
		if err != nil {
			return restrictions, fmt.Errorf("failed to parse %s flag: %w", name, err)
		}
		restrictions.Set(r, enabled)
	}

	names, err := p.cmd.Flags().GetStringSlice(RestrictionListFlag)
	if err != nil {
		return restrictions, fmt.Errorf("failed to parse %s flag: %w", RestrictionListFlag, err)
	}
	for _, name := range names {
		r, err := models.ParseRestriction(name)
		if err != nil {
			return restrictions, err
		}
		restrictions.Set(r, true)
	}
	return restrictions, nil
}

// ParseDelay returns the --delay-ms flag when given, otherwise the configured delay.
// Negative values mean no delay.
func (p *FlagParser) ParseDelay(flagName string, cfg *config.Config) (time.Duration, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return cfg.Generation.Delay(), nil
	}

	ms, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return config.GenerationConfig{DelayMS: &ms}.Delay(), nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
