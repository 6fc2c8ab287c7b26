package notify

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Every key has an Italian translation registered in init.
const (
	KeyUnauthorized    = "error.unauthorized"
	KeyNotFound        = "error.not_found"
	KeyValidation      = "error.validation"
	KeyValidationField = "error.validation_field"
	KeyServer          = "error.server"
	KeyOffline         = "error.offline"
	KeyTimeout         = "error.timeout"
	KeyGeneric         = "error.generic"
	KeyBadRequest      = "error.bad_request"
	KeyNoPlayer        = "live.no_player"
	KeyNothingToUndo   = "live.nothing_to_undo"
	KeyBusy            = "live.busy"
	KeyUnknownAction   = "live.unknown_action"
	KeyUnknownTeam     = "live.unknown_team"
	KeyWrongTeam       = "live.wrong_team"
	KeySessionNotFound = "live.session_not_found"

	KeyActionRecorded = "live.action_recorded"
	KeyActionUndone   = "live.action_undone"
	KeyTeamStatsSaved = "live.team_stats_saved"
	KeySessionOpened  = "live.session_opened"
	KeySessionClosed  = "live.session_closed"
	KeyClockStarted   = "live.clock_started"
	KeyClockStopped   = "live.clock_stopped"
	KeyClockReset     = "live.clock_reset"
	KeyPDFGenerated   = "stats.pdf_generated"
	KeyJournalCleared = "journal.cleared"
)

var italian = map[string]string{
	KeyUnauthorized:    "Non sei autorizzato a eseguire questa operazione.",
	KeyNotFound:        "La risorsa richiesta non è stata trovata.",
	KeyValidation:      "I dati inseriti non sono validi. Controlla i campi e riprova.",
	KeyValidationField: "I dati inseriti non sono validi (%s): %s",
	KeyServer:          "Errore del server. Riprova più tardi.",
	KeyOffline:         "Impossibile contattare il server. Verifica la connessione di rete.",
	KeyTimeout:         "Il server non ha risposto in tempo. Riprova.",
	KeyGeneric:         "Si è verificato un errore imprevisto.",
	KeyBadRequest:      "Richiesta non valida: %s",
	KeyNoPlayer:        "Seleziona un giocatore prima di registrare un'azione.",
	KeyNothingToUndo:   "Non ci sono azioni da annullare.",
	KeyBusy:            "Operazione in corso, attendi la risposta del server.",
	KeyUnknownAction:   "Azione non riconosciuta.",
	KeyUnknownTeam:     "La squadra selezionata non partecipa a questa partita.",
	KeyWrongTeam:       "Il giocatore non fa parte della squadra selezionata.",
	KeySessionNotFound: "Sessione di partita non trovata o chiusa.",

	KeyActionRecorded: "Azione registrata: %s",
	KeyActionUndone:   "Azione annullata: %s",
	KeyTeamStatsSaved: "Statistiche di squadra salvate con successo.",
	KeySessionOpened:  "Partita aperta: %s",
	KeySessionClosed:  "Sessione chiusa.",
	KeyClockStarted:   "Cronometro avviato.",
	KeyClockStopped:   "Cronometro fermato.",
	KeyClockReset:     "Cronometro azzerato.",
	KeyPDFGenerated:   "Report PDF generato.",
	KeyJournalCleared: "Storico della partita cancellato (%d azioni).",
}

var printer *message.Printer

func init() {
	for key, text := range italian {
		if err := message.SetString(language.Italian, key, text); err != nil {
			log.Printf("notify: register %q: %v", key, err)
		}
	}
	printer = message.NewPrinter(language.Italian)
}

// Text renders a catalog message.
func Text(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}
