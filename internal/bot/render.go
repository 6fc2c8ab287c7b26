package bot

import (
	"fmt"
	"strings"

	actionloghandlers "basketball-league-admin/internal/actionLogHandlers"
	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
)

func describeShort(game models.Game) string {
	text := fmt.Sprintf("#%d %s - %s", game.ID, game.HomeName(), game.AwayName())
	if at, err := game.StartsAt(); err == nil {
		text += at.Format(" 02/01 15:04")
	}
	return text
}

func liveHeader(snap livegame.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d - %d %s\n", snap.Home.Name, snap.Home.Totals.Points, snap.Away.Totals.Points, snap.Away.Name)

	state := "fermo"
	if snap.Clock.Running {
		state = "in corso"
	}
	fmt.Fprintf(&b, "⏱ %s (%s)", snap.Clock.Elapsed, state)

	if snap.SelectedPlayerID != 0 {
		for _, side := range []livegame.TeamBox{snap.Home, snap.Away} {
			for _, line := range side.Players {
				if line.PlayerID == snap.SelectedPlayerID {
					fmt.Fprintf(&b, "\nGiocatore: %s (%s)", line.PlayerLabel(), side.Name)
				}
			}
		}
	}
	if snap.PendingUndo != nil {
		fmt.Fprintf(&b, "\nUltima azione: %s", snap.PendingUndo.Action.Label())
	}
	return b.String()
}

func lineText(line models.PlayerStat) string {
	return fmt.Sprintf("%s: %d pt, %d/%d da 2, %d/%d da 3, %d/%d TL, %d rimb, %d ast, %d rec, %d pp, %d stp, %d falli",
		line.PlayerLabel(), line.Points,
		line.TwoPointsMade, line.TwoPointsAttempted,
		line.ThreePointsMade, line.ThreePointsAttempted,
		line.FreeThrowsMade, line.FreeThrowsAttempted,
		line.TotalRebounds, line.Assists, line.Steals, line.Turnovers, line.Blocks, line.PersonalFouls)
}

func boxScoreText(snap livegame.Snapshot) string {
	var b strings.Builder
	for i, side := range []livegame.TeamBox{snap.Home, snap.Away} {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s - %d punti", side.Name, side.Totals.Points)
		for _, line := range side.Players {
			fmt.Fprintf(&b, "\n%s: %d pt, %d rimb, %d ast", line.PlayerLabel(), line.Points, line.TotalRebounds, line.Assists)
		}
	}
	return b.String()
}

var journalKinds = map[string]string{
	actionloghandlers.KindRecorded:  "➕",
	actionloghandlers.KindUndone:    "↩️",
	actionloghandlers.KindTeamStats: "📊",
}

func journalText(gameID int, entries []models.ActionLog) string {
	if len(entries) == 0 {
		return fmt.Sprintf("Nessuna azione registrata per la partita #%d.", gameID)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Azioni della partita #%d:", gameID)
	for _, e := range entries {
		icon := journalKinds[e.Kind]
		if e.Kind == actionloghandlers.KindTeamStats {
			fmt.Fprintf(&b, "\n%s %s statistiche di squadra salvate", icon, livegame.FormatElapsedSeconds(e.ClockSeconds))
			continue
		}
		fmt.Fprintf(&b, "\n%s %s %s giocatore %d (%d pt)",
			icon, livegame.FormatElapsedSeconds(e.ClockSeconds), models.Action(e.Action).Label(), e.PlayerID, e.Points)
	}
	return b.String()
}
