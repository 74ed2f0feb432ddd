package color

import (
	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	infoColor   = color.New(color.FgGreen)
	answerColor = color.New(color.FgHiYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
)

func ColorPrompt(s string) string {
	return promptColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorAnswer(s string) string {
	return answerColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}
