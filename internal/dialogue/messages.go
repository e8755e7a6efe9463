package dialogue

import "fmt"

const (
	msgGreeting      = "Hello, stranger, let study English..."
	msgAddWordPrompt = "Введите слово и перевод через дефис (пример: Peace-Мир)"
	msgBadFormat     = "Неверный формат! Используйте: Слово-Перевод"
	msgDeleteFailed  = "Не удалось удалить слово. Попробуйте позже."
	msgFailure       = "Произошла ошибка. Попробуйте позже."
)

func msgNoWords(addWordLabel string) string {
	return fmt.Sprintf("У вас нет слов. Добавьте слово с помощью кнопки '%s'", addWordLabel)
}

func msgCard(translation string) string {
	return "Выбери перевод слова:\n🇷🇺 " + translation
}

func msgCorrect(hint string) string {
	return "Отлично!❤\n" + hint
}

func msgWrong(translation string) string {
	return "Допущена ошибка!\nПопробуй ещё раз вспомнить слово 🇷🇺" + translation
}

func msgDeleted(target string) string {
	return fmt.Sprintf("Слово %s удалено!", target)
}

func msgAdded(target string) string {
	return fmt.Sprintf("Слово %s добавлено!", target)
}

func msgAlreadyAdded(target string) string {
	return fmt.Sprintf("Слово %s уже есть в вашем словаре.", target)
}
