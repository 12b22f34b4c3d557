package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/slack-go/slack"
)

// SlackAnnouncer posts a channel message when a tournament changes phase:
// groups drawn, semifinals set, finals set and final ranking. Other events
// are ignored.
type SlackAnnouncer struct {
	api       *slack.Client
	channelID string
	logger    *slog.Logger
}

var _ services.Publisher = (*SlackAnnouncer)(nil)

func NewSlackAnnouncer(token, channelID string, logger *slog.Logger) *SlackAnnouncer {
	return NewSlackAnnouncerWithAPI(slack.New(token), channelID, logger)
}

// NewSlackAnnouncerWithAPI uses a preconfigured client, e.g. one pointed at a
// test server.
func NewSlackAnnouncerWithAPI(api *slack.Client, channelID string, logger *slog.Logger) *SlackAnnouncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlackAnnouncer{api: api, channelID: channelID, logger: logger}
}

func (a *SlackAnnouncer) Publish(ctx context.Context, event services.TournamentEvent) error {
	if len(event.Transitions) == 0 || event.View == nil {
		return nil
	}
	for _, tr := range event.Transitions {
		msg := FormatTransition(event.Key, tr.To, tr.Created)
		if _, _, err := a.api.PostMessageContext(ctx, a.channelID, slack.MsgOptionBlocks(msg.Blocks.BlockSet...)); err != nil {
			return fmt.Errorf("failed to send slack message: %w", err)
		}
	}
	if event.View.Phase == models.PhaseTournamentComplete && len(event.View.FinalRanking) > 0 {
		msg := FormatRanking(event.Key, event.View.FinalRanking)
		if _, _, err := a.api.PostMessageContext(ctx, a.channelID, slack.MsgOptionBlocks(msg.Blocks.BlockSet...)); err != nil {
			return fmt.Errorf("failed to send slack message: %w", err)
		}
	}
	a.logger.Debug("slack announcement sent", slog.String("tournament", event.Key), slog.Int("transitions", len(event.Transitions)))
	return nil
}

// FormatTransition announces the matches created by a phase change.
func FormatTransition(key string, phase models.Phase, created []*models.Match) slack.Message {
	var title string
	switch phase {
	case models.PhaseGroupsInProgress:
		title = "🎾 Groups drawn for " + key
	case models.PhaseSemisInProgress:
		title = "🎾 Semifinals set for " + key
	case models.PhaseFinalsInProgress:
		title = "🏆 Final and third-place match set for " + key
	default:
		title = fmt.Sprintf("🎾 %s: %s", key, phase.Description())
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", title, true, false)),
	}
	if len(created) > 0 {
		lines := make([]string, 0, len(created))
		for _, m := range created {
			label := string(m.Kind)
			if m.Kind == models.KindGroup {
				label = "Group " + string(m.Group)
			}
			lines = append(lines, fmt.Sprintf("%s: %s vs %s", label, m.Player1, m.Player2))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}
	return slack.NewBlockMessage(blocks...)
}

// FormatRanking lists the final placement of every player.
func FormatRanking(key string, ranking []models.Placement) slack.Message {
	lines := make([]string, 0, len(ranking))
	for _, p := range ranking {
		lines = append(lines, fmt.Sprintf("%d. %s", p.Position, p.Player))
	}
	return slack.NewBlockMessage(
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 Final ranking for "+key, true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil),
	)
}
