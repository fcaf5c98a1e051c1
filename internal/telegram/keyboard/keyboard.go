package keyboard

import tele "gopkg.in/telebot.v4"

// RemoveKeyboard returns a markup that hides the reply keyboard.
func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// ReplyButtons builds a reply keyboard from rows of text. Tapping a button
// sends its label as a plain message, which keeps flows purely text-driven.
func ReplyButtons(rows ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	var kb []tele.Row
	for _, row := range rows {
		var buttons []tele.Btn
		for _, label := range row {
			buttons = append(buttons, markup.Text(label))
		}
		kb = append(kb, markup.Row(buttons...))
	}
	markup.Reply(kb...)
	return markup
}
