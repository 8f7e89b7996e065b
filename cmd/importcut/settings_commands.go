package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"importcut/internal/usersettings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage per-user import settings",
	}

	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	settingsCmd.AddCommand(newSettingsResetCommand(ctx))

	return settingsCmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.settingsStore()
			if err != nil {
				return err
			}
			settings, err := store.Load()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"update_shot_statuses", strconv.FormatBool(settings.UpdateShotStatuses)},
				{"use_smart_fields", strconv.FormatBool(settings.UseSmartFields)},
				{"email_groups", strings.Join(settings.EmailGroups, ", ")},
				{"omit_status", settings.OmitStatus},
				{"reinstate_status", settings.ReinstateStatus},
				{"reinstate_shot_if_status_is", strings.Join(settings.ReinstateShotIfStatusIs, ", ")},
				{"default_frame_rate", fmt.Sprintf("%g", settings.DefaultFrameRate)},
				{"timecode_to_frame_mapping", settings.TimecodeMappingMode},
				{"timecode_mapping", settings.TimecodeMapping},
				{"frame_mapping", strconv.Itoa(settings.FrameMapping)},
				{"default_head_in", strconv.Itoa(settings.DefaultHeadIn)},
				{"default_head_duration", strconv.Itoa(settings.DefaultHeadDuration)},
				{"default_tail_duration", strconv.Itoa(settings.DefaultTailDuration)},
				{"preload_entity_type", settings.PreloadEntityType},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings file: %s\n", store.Path())
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			return nil
		},
	}
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.settingsStore()
			if err != nil {
				return err
			}
			current, err := store.Load()
			if err != nil {
				return err
			}

			updated := current
			if err := applySetting(&updated, args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(updated); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Set %s = %s\n", args[0], args[1])
			if usersettings.RestartRequired(current, updated) {
				printStatus(out, ansiYellow, "This change takes effect after restarting the import flow")
			}
			return nil
		},
	}
}

func newSettingsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.settingsStore()
			if err != nil {
				return err
			}
			if _, err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings restored to defaults (%s)\n", store.Path())
			return nil
		},
	}
}

func applySetting(settings *usersettings.Settings, key, value string) error {
	parseBool := func() (bool, error) {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return parsed, nil
	}
	parseInt := func() (int, error) {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s expects a number, got %q", key, value)
		}
		return parsed, nil
	}
	parseList := func() []string {
		if strings.TrimSpace(value) == "" {
			return []string{}
		}
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	var err error
	switch key {
	case "update_shot_statuses":
		settings.UpdateShotStatuses, err = parseBool()
	case "use_smart_fields":
		settings.UseSmartFields, err = parseBool()
	case "email_groups":
		settings.EmailGroups = parseList()
	case "omit_status":
		settings.OmitStatus = value
	case "reinstate_status":
		settings.ReinstateStatus = value
	case "reinstate_shot_if_status_is":
		settings.ReinstateShotIfStatusIs = parseList()
	case "default_frame_rate":
		settings.DefaultFrameRate, err = strconv.ParseFloat(value, 64)
		if err != nil {
			err = fmt.Errorf("default_frame_rate expects a number, got %q", value)
		}
	case "timecode_to_frame_mapping":
		settings.TimecodeMappingMode = value
	case "timecode_mapping":
		settings.TimecodeMapping = value
	case "frame_mapping":
		settings.FrameMapping, err = parseInt()
	case "default_head_in":
		settings.DefaultHeadIn, err = parseInt()
	case "default_head_duration":
		settings.DefaultHeadDuration, err = parseInt()
	case "default_tail_duration":
		settings.DefaultTailDuration, err = parseInt()
	case "preload_entity_type":
		settings.PreloadEntityType = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return err
}
