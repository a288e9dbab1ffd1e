package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-builder/internal/handlers/builder/v1alpha1"
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character [player-id] [name] [clan]",
	Short: "Create a character",
	Long: `Create a character with no predator type yet. Example:

  create-character player-1 Lucienne Toreador`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.CharacterServiceName, "CreateCharacter", map[string]any{
			"player_id": args[0],
			"name":      args[1],
			"clan":      args[2],
		})
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Get a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.CharacterServiceName, "GetCharacter", map[string]any{
			"character_id": args[0],
		})
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters [player-id]",
	Short: "List a player's characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.CharacterServiceName, "ListCharacters", map[string]any{
			"player_id": args[0],
		})
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character [character-id]",
	Short: "Delete a character and close its open session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.CharacterServiceName, "DeleteCharacter", map[string]any{
			"character_id": args[0],
		})
	},
}

var (
	updatePowers  []string
	updateRituals []string
)

var updateDisciplinesCmd = &cobra.Command{
	Use:   "update-disciplines [character-id]",
	Short: "Replace a character's discipline powers and rituals",
	Long: `Replace the powers and rituals learned after the predator type step.
Powers are discipline:level:name, rituals are level:name. Example:

  update-disciplines char_123 --power "celerity:1:Cat's Grace" --power "potence:1:Lethal Body"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		powers, err := parsePowers(updatePowers)
		if err != nil {
			return err
		}
		rituals, err := parseRituals(updateRituals)
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.CharacterServiceName, "UpdateDisciplines", map[string]any{
			"character_id": args[0],
			"disciplines":  powers,
			"rituals":      rituals,
		})
	},
}

func init() {
	updateDisciplinesCmd.Flags().StringArrayVar(&updatePowers, "power", nil, "power as discipline:level:name (repeatable)")
	updateDisciplinesCmd.Flags().StringArrayVar(&updateRituals, "ritual", nil, "ritual as level:name (repeatable)")
}

// parsePowers turns discipline:level:name flags into request values
func parsePowers(flags []string) ([]any, error) {
	powers := make([]any, 0, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("power %q must be discipline:level:name", f)
		}
		level, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("power %q: level must be a whole number", f)
		}
		powers = append(powers, map[string]any{
			"discipline": parts[0],
			"level":      level,
			"name":       parts[2],
		})
	}
	return powers, nil
}

// parseRituals turns level:name flags into request values
func parseRituals(flags []string) ([]any, error) {
	rituals := make([]any, 0, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("ritual %q must be level:name", f)
		}
		level, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("ritual %q: level must be a whole number", f)
		}
		rituals = append(rituals, map[string]any{
			"level": level,
			"name":  parts[1],
		})
	}
	return rituals, nil
}
