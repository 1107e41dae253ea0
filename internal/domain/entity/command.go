package entity

// Command действие, выбранное нажатием клавиши
type Command int

const (
	CommandNone       Command = iota // Клавиша не нажата или не назначена
	CommandExit                      // ESC
	CommandBlur                      // 'b'
	CommandPixelate                  // 'p'
	CommandScreenshot                // 's'
)

// KeyEsc код клавиши ESC
const KeyEsc = 27

// CommandFromKey переводит код клавиши в команду.
// Отрицательный код означает, что за время ожидания ничего не нажато.
func CommandFromKey(key int) Command {
	if key < 0 {
		return CommandNone
	}

	switch key & 0xFF {
	case KeyEsc:
		return CommandExit
	case 'b':
		return CommandBlur
	case 'p':
		return CommandPixelate
	case 's':
		return CommandScreenshot
	default:
		return CommandNone
	}
}

func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandBlur:
		return "blur"
	case CommandPixelate:
		return "pixelate"
	case CommandScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}
