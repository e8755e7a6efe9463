// Package dialogue interprets chat messages against the per-chat session
// and produces the replies to send back.
package dialogue

import (
	"errors"
	"strings"

	"wordcards/internal/domain"
	"wordcards/internal/service"
	"wordcards/internal/session"

	"go.uber.org/zap"
)

// Message is an incoming text message
type Message struct {
	ChatID   int64
	Username string
	Text     string
}

// Reply is an outgoing message. Options, when set, replace the answer keyboard.
type Reply struct {
	Text    string
	Options []string
}

// Controller drives the quiz conversation of every chat.
// Calls for the same chat must not run concurrently.
type Controller struct {
	users    *service.UserService
	words    *service.WordService
	cards    *service.CardService
	sessions session.Store
	labels   domain.Labels
	logger   *zap.Logger
}

// NewController creates a new dialogue controller
func NewController(
	users *service.UserService,
	words *service.WordService,
	cards *service.CardService,
	sessions session.Store,
	labels domain.Labels,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		users:    users,
		words:    words,
		cards:    cards,
		sessions: sessions,
		labels:   labels,
		logger:   logger,
	}
}

// Labels returns the button labels commands are resolved against
func (c *Controller) Labels() domain.Labels {
	return c.labels
}

// Handle processes one message and returns the replies in send order
func (c *Controller) Handle(msg Message) []Reply {
	text := strings.TrimSpace(msg.Text)
	cmd := c.labels.Resolve(text)
	sess, known := c.sessions.Get(msg.ChatID)

	c.logger.Debug("Handling message",
		zap.Int64("chat_id", msg.ChatID),
		zap.String("command", cmd.String()),
		zap.String("mode", string(sess.Mode)),
		zap.Bool("has_question", sess.HasQuestion()),
	)

	var replies []Reply
	if !known {
		replies = append(replies, Reply{Text: msgGreeting})
		c.sessions.SetMode(msg.ChatID, domain.ModeQuiz)
		c.logger.Info("New chat session",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int("sessions", c.sessions.Len()),
		)
	}
	if !sess.Registered {
		c.register(msg)
	}

	return append(replies, c.dispatch(msg, text, cmd, sess)...)
}

func (c *Controller) dispatch(msg Message, text string, cmd domain.Command, sess session.Session) []Reply {
	switch cmd {
	case domain.CommandStart, domain.CommandNext:
		return c.start(msg.ChatID)
	case domain.CommandDeleteWord:
		if !sess.HasQuestion() {
			return c.start(msg.ChatID)
		}
		return c.deleteWord(msg.ChatID, *sess.Question)
	case domain.CommandAddWord:
		c.sessions.SetMode(msg.ChatID, domain.ModeAwaitingNewWord)
		return []Reply{{Text: msgAddWordPrompt}}
	}

	if sess.Mode == domain.ModeAwaitingNewWord {
		return c.saveWord(msg, text)
	}

	if !sess.HasQuestion() {
		return c.start(msg.ChatID)
	}

	return c.checkAnswer(*sess.Question, text)
}

// register stores the user with its starting deck. A failure is retried
// on the next message, and the user can still practise an existing deck.
func (c *Controller) register(msg Message) {
	if _, err := c.users.Register(msg.ChatID, msg.Username); err != nil {
		c.logger.Error("Failed to register user",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
		return
	}
	c.sessions.MarkRegistered(msg.ChatID)
}

// start returns the chat to quiz mode and shows a fresh card
func (c *Controller) start(chatID int64) []Reply {
	c.sessions.SetMode(chatID, domain.ModeQuiz)
	return c.draw(chatID)
}

// draw shows a new card or explains why there is none
func (c *Controller) draw(chatID int64) []Reply {
	card, err := c.cards.Draw(chatID)
	if errors.Is(err, domain.ErrNoWords) {
		c.sessions.ClearQuestion(chatID)
		return []Reply{{Text: msgNoWords(c.labels.AddWord)}}
	}
	if err != nil {
		c.logger.Error("Failed to draw card",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		c.sessions.ClearQuestion(chatID)
		return []Reply{{Text: msgFailure}}
	}

	c.sessions.SetQuestion(chatID, card.Question)
	return []Reply{{Text: msgCard(card.Translation), Options: card.Options}}
}

// deleteWord drops the shown word from the deck, then draws the next card
func (c *Controller) deleteWord(chatID int64, q domain.Question) []Reply {
	c.sessions.SetMode(chatID, domain.ModeQuiz)

	var reply Reply
	deleted, err := c.words.DeleteWord(chatID, q.UserWordID)
	switch {
	case err != nil:
		c.logger.Error("Failed to delete word",
			zap.Int64("chat_id", chatID),
			zap.Int64("user_word_id", q.UserWordID),
			zap.Error(err),
		)
		reply = Reply{Text: msgDeleteFailed}
	case !deleted:
		c.logger.Warn("Word to delete not found",
			zap.Int64("chat_id", chatID),
			zap.Int64("user_word_id", q.UserWordID),
		)
		reply = Reply{Text: msgDeleteFailed}
	default:
		reply = Reply{Text: msgDeleted(q.Target)}
	}

	c.sessions.ClearQuestion(chatID)
	return append([]Reply{reply}, c.draw(chatID)...)
}

// saveWord parses "word-translation" and adds it to the deck.
// Malformed input keeps the chat waiting for a word.
func (c *Controller) saveWord(msg Message, text string) []Reply {
	pair, err := service.ParseWordPair(text)
	if err != nil {
		return []Reply{{Text: msgBadFormat}}
	}

	c.sessions.SetMode(msg.ChatID, domain.ModeQuiz)

	added, err := c.words.AddWord(msg.ChatID, msg.Username, pair)
	if err != nil {
		c.logger.Error("Failed to add word",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("word", pair.Target),
			zap.Error(err),
		)
		return []Reply{{Text: msgFailure}}
	}

	if !added {
		return []Reply{{Text: msgAlreadyAdded(pair.Target)}}
	}

	c.logger.Info("Word added",
		zap.Int64("chat_id", msg.ChatID),
		zap.String("word", pair.Target),
		zap.String("translation", pair.Translation),
	)
	return []Reply{{Text: msgAdded(pair.Target)}}
}

// checkAnswer compares the text with the shown word and reshuffles the options.
// The question stays the same until the user asks for the next one.
func (c *Controller) checkAnswer(q domain.Question, text string) []Reply {
	options := c.cards.Options(q.Target)

	if text == q.Target {
		return []Reply{{Text: msgCorrect(q.Hint()), Options: options}}
	}
	return []Reply{{Text: msgWrong(q.Translation), Options: options}}
}
