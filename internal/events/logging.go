package events

import (
	"context"
	"log/slog"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
)

const loggingPriority = 100

// SubscribeLogging logs commits at DEBUG and cascades at INFO. It returns
// the subscription IDs.
func SubscribeLogging(bus rpgevents.EventBus) []string {
	committed := bus.SubscribeFunc(EventPredatorTypeCommitted, loggingPriority,
		func(ctx context.Context, e rpgevents.Event) error {
			predatorType, _ := e.Context().Get(KeyPredatorType)
			subChoice, _ := e.Context().Get(KeySubChoice)
			slog.DebugContext(ctx, "predator type committed",
				"character_id", entityID(e),
				"predator_type", predatorType,
				"sub_choice", subChoice)
			return nil
		})

	cascaded := bus.SubscribeFunc(EventPredatorTypeCascade, loggingPriority,
		func(ctx context.Context, e rpgevents.Event) error {
			previous, _ := e.Context().Get(KeyPreviousSubChoice)
			subChoice, _ := e.Context().Get(KeySubChoice)
			disciplines, _ := e.Context().Get(KeyClearedDisciplines)
			rituals, _ := e.Context().Get(KeyClearedRituals)
			slog.InfoContext(ctx, "bonus discipline changed, cleared dependent powers",
				"character_id", entityID(e),
				"previous_sub_choice", previous,
				"sub_choice", subChoice,
				"cleared_disciplines", disciplines,
				"cleared_rituals", rituals)
			return nil
		})

	return []string{committed, cascaded}
}

func entityID(e rpgevents.Event) string {
	if e.Source() == nil {
		return ""
	}
	return e.Source().GetID()
}
