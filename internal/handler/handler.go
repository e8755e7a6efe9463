package handler

import (
	"wordcards/internal/dialogue"
	"wordcards/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// keyboardColumns is the number of buttons per reply keyboard row
const keyboardColumns = 2

// Handler connects the Telegram bot to the dialogue controller
type Handler struct {
	bot        *tele.Bot
	controller *dialogue.Controller
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	controller *dialogue.Controller,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		controller: controller,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleMessage)
	h.bot.Handle("/cards", h.handleMessage)

	// Buttons, answers and new words all arrive as plain text
	h.bot.Handle(tele.OnText, h.handleMessage)
}

// handleMessage passes the message to the controller and sends its replies in order
func (h *Handler) handleMessage(c tele.Context) error {
	msg, ok := messageFrom(c)
	if !ok {
		return nil
	}

	for _, reply := range h.controller.Handle(msg) {
		if err := h.send(c, reply); err != nil {
			h.logger.Error("Failed to send reply",
				zap.Int64("chat_id", msg.ChatID),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func (h *Handler) send(c tele.Context, reply dialogue.Reply) error {
	if reply.Options == nil {
		return c.Send(reply.Text)
	}
	return c.Send(reply.Text, answerKeyboard(reply.Options, h.controller.Labels()))
}

// messageFrom extracts the dialogue message, skipping updates without a chat
func messageFrom(c tele.Context) (dialogue.Message, bool) {
	chat := c.Chat()
	if chat == nil {
		return dialogue.Message{}, false
	}

	msg := dialogue.Message{
		ChatID: chat.ID,
		Text:   c.Text(),
	}
	if sender := c.Sender(); sender != nil {
		msg.Username = sender.Username
	}
	return msg, true
}

// answerKeyboard lays out the answer options followed by the action buttons
func answerKeyboard(options []string, labels domain.Labels) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	buttons := make([]tele.Btn, 0, len(options)+len(labels.Buttons()))
	for _, option := range options {
		buttons = append(buttons, markup.Text(option))
	}
	for _, label := range labels.Buttons() {
		buttons = append(buttons, markup.Text(label))
	}

	markup.Reply(markup.Split(keyboardColumns, buttons)...)
	return markup
}
