package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Printer returns a message printer for the closest supported language.
// Unknown or malformed values fall back to English.
func Printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		return message.NewPrinter(language.English)
	}
	_, idx, _ := tagMatcher.Match(tag)
	return message.NewPrinter(supportedTags[idx])
}

func init() {
	en := language.English

	// Prompts
	message.SetString(en, "prompt.city", "Player %s, enter city coordinates as row,column: ")
	message.SetString(en, "prompt.unit", "Player %s, enter coordinates for unit %d as row,column: ")
	message.SetString(en, "prompt.move", "Player %s, enter move for unit at %s as row,column, or press enter to skip: ")
	message.SetString(en, "prompt.handoff", "Give the board to player %s, then press enter to continue")
	message.SetString(en, "move.planned", "Moving unit from %s to %s")

	// Input errors
	message.SetString(en, "input.syntax", "Invalid input, enter row and column as integers separated by a comma")
	message.SetString(en, "input.range", "Invalid input, row and column must be between 0 and %d")

	// Rule rejections
	message.SetString(en, "reason.zone", "Invalid placement, it must be on your last %d rows")
	message.SetString(en, "reason.city_terrain", "Invalid coordinates, a city must be built on a plain")
	message.SetString(en, "reason.city_taken", "Invalid coordinates, a city already stands there")
	message.SetString(en, "reason.terrain", "Invalid coordinates, units cannot stand on mountains or lakes")
	message.SetString(en, "reason.capacity", "You already have %d units on the board")
	message.SetString(en, "reason.too_far", "Invalid move, a unit moves at most one square")
	message.SetString(en, "reason.other", "Not allowed: %v")

	// Results
	message.SetString(en, "turn.resolved", "Turn %d resolved: %d units captured")
	message.SetString(en, "game.win", "Player %s wins!")
	message.SetString(en, "game.draw", "Game ended in a draw")

	es := language.Spanish

	message.SetString(es, "prompt.city", "Jugador %s, introduce las coordenadas de la ciudad como fila,columna: ")
	message.SetString(es, "prompt.unit", "Jugador %s, introduce las coordenadas de la unidad %d como fila,columna: ")
	message.SetString(es, "prompt.move", "Jugador %s, introduce el movimiento de la unidad en %s como fila,columna, o pulsa intro para saltar: ")
	message.SetString(es, "prompt.handoff", "Pasa el tablero al jugador %s y pulsa intro para continuar")
	message.SetString(es, "move.planned", "Moviendo unidad de %s a %s")

	message.SetString(es, "input.syntax", "Entrada no válida, introduce fila y columna como enteros separados por una coma")
	message.SetString(es, "input.range", "Entrada no válida, fila y columna deben estar entre 0 y %d")

	message.SetString(es, "reason.zone", "Colocación no válida, debe estar en tus últimas %d filas")
	message.SetString(es, "reason.city_terrain", "Coordenadas no válidas, la ciudad debe construirse en una llanura")
	message.SetString(es, "reason.city_taken", "Coordenadas no válidas, ya hay una ciudad ahí")
	message.SetString(es, "reason.terrain", "Coordenadas no válidas, las unidades no pueden estar en montañas ni lagos")
	message.SetString(es, "reason.capacity", "Ya tienes %d unidades en el tablero")
	message.SetString(es, "reason.too_far", "Movimiento no válido, una unidad avanza como máximo una casilla")
	message.SetString(es, "reason.other", "No permitido: %v")

	message.SetString(es, "turn.resolved", "Turno %d resuelto: %d unidades capturadas")
	message.SetString(es, "game.win", "¡Gana el jugador %s!")
	message.SetString(es, "game.draw", "La partida termina en empate")
}
