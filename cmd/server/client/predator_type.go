package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-builder/internal/handlers/builder/v1alpha1"
)

var (
	listCategory    string
	listCharacterID string
)

var listPredatorTypesCmd = &cobra.Command{
	Use:   "list-predator-types",
	Short: "List predator types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.PredatorTypeServiceName, "ListPredatorTypes", map[string]any{
			"category":     listCategory,
			"character_id": listCharacterID,
		})
	},
}

var openChoiceCmd = &cobra.Command{
	Use:   "open-choice [character-id] [predator-type]",
	Short: "Open a predator type for point allocation",
	Long: `Open a predator type and print the zeroed allocation. Example:

  open-choice char_123 Alleycat`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PredatorTypeServiceName, "OpenChoice", map[string]any{
			"character_id":  args[0],
			"predator_type": args[1],
		})
	},
}

var setPointsCmd = &cobra.Command{
	Use:   "set-points [session-id] [group] [option] [level]",
	Short: "Assign points to an option",
	Long: `Assign points within an open session. Example:

  set-points session_abc "Criminal Contacts" Contacts 2`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("level must be a whole number: %w", err)
		}
		return call(cmd, v1alpha1.PredatorTypeServiceName, "SetPoints", map[string]any{
			"session_id": args[0],
			"group":      args[1],
			"option":     args[2],
			"level":      level,
		})
	},
}

var getSessionCmd = &cobra.Command{
	Use:   "get-session [session-id]",
	Short: "Show an open allocation session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PredatorTypeServiceName, "GetSession", map[string]any{
			"session_id": args[0],
		})
	},
}

var commitChoiceCmd = &cobra.Command{
	Use:   "commit-choice [session-id] [specialty] [discipline]",
	Short: "Confirm a predator type into its character",
	Long: `Commit the session with a specialty and bonus discipline. Example:

  commit-choice session_abc brawl_Grappling potence`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PredatorTypeServiceName, "CommitChoice", map[string]any{
			"session_id": args[0],
			"specialty":  args[1],
			"sub_choice": args[2],
		})
	},
}

var cancelChoiceCmd = &cobra.Command{
	Use:   "cancel-choice [session-id]",
	Short: "Discard an open allocation session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PredatorTypeServiceName, "CancelChoice", map[string]any{
			"session_id": args[0],
		})
	},
}

func init() {
	listPredatorTypesCmd.Flags().StringVar(&listCategory, "category", "", "only list this category")
	listPredatorTypesCmd.Flags().StringVar(&listCharacterID, "character", "", "mark availability for this character")
}
