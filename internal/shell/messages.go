package shell

import (
	"fmt"

	"github.com/san-kum/catenary/internal/query"
)

// Messages is one language's set of prompts and diagnostics.
type Messages struct {
	CoefficientPrompt string
	// ExceptFormat wraps the list of excluded values after a prompt.
	ExceptFormat string
	ChoicePrompt string
	XPrompt      string
	X1Prompt     string
	X2Prompt     string
	Result       string

	TooManyChars string
	InvalidValue string
	OutOfRange   string
	NotAllowed   string

	CoefficientFallback string

	Operations map[int]string
}

var catalogs = map[string]*Messages{
	"en": {
		CoefficientPrompt: "Enter the value of coefficient 'a'",
		ExceptFormat:      " (all values except %s):",
		ChoicePrompt:      "Choose a function:",
		XPrompt:           "Enter the value of 'x':",
		X1Prompt:          "Enter the value of 'x1':",
		X2Prompt:          "Enter the value of 'x2':",
		Result:            "Result:",

		TooManyChars: "Too many characters received. Please re-enter:",
		InvalidValue: "Invalid value received. Please re-enter:",
		OutOfRange:   "The number is outside the given bounds.\nPlease re-enter:",
		NotAllowed:   "The value is not allowed.\nPlease re-enter:",

		CoefficientFallback: "wrong value for 'a', 'a' is now set to '%s'",

		Operations: map[int]string{
			query.Exit:            "Exit",
			query.Ordinate:        "Catenary ordinate",
			query.ArcLength:       "Arc length",
			query.CurvatureRadius: "Curvature radius",
			query.CurvatureCenter: "Curvature center coordinates",
			query.Area:            "Curvilinear trapeze area",
		},
	},
	"ru": {
		CoefficientPrompt: "Введите значение коэффициента 'a'",
		ExceptFormat:      " (все значения кроме %s):",
		ChoicePrompt:      "Выберите функцию:",
		XPrompt:           "Введите значение 'x':",
		X1Prompt:          "Введите значение 'x1':",
		X2Prompt:          "Введите значение 'x2':",
		Result:            "Результат:",

		TooManyChars: "Получено слишком много символов. Пожалуйста, повторите ввод:",
		InvalidValue: "Получено неверное значение. Пожалуйста, повторите ввод:",
		OutOfRange:   "Введенное число выходит за указанные границы.\nПожалуйста, повторите ввод:",
		NotAllowed:   "Введенное значение недопустимо.\nПожалуйста, повторите ввод:",

		CoefficientFallback: "неверное значение 'a', 'a' теперь равно '%s'",

		Operations: map[int]string{
			query.Exit:            "Выход",
			query.Ordinate:        "Вернуть ординату цепной линии",
			query.ArcLength:       "Вернуть длину дуги",
			query.CurvatureRadius: "Вернуть радиус кривизны",
			query.CurvatureCenter: "Вернуть координаты центра кривизны",
			query.Area:            "Вернуть площадь криволинейной трапеции",
		},
	},
}

// Catalog returns the messages for lang.
func Catalog(lang string) (*Messages, error) {
	m, ok := catalogs[lang]
	if !ok {
		return nil, fmt.Errorf("shell: no messages for language %q", lang)
	}
	return m, nil
}

// ArgPrompt returns the prompt for the i-th argument of an operation.
func (m *Messages) ArgPrompt(op *query.Operation, i int) string {
	if len(op.Args) == 1 {
		return m.XPrompt
	}
	if i == 0 {
		return m.X1Prompt
	}
	return m.X2Prompt
}
