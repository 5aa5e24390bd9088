// Package effect describes terminal side effects that handlers return instead of
// performing them. The HTTP layer interprets them.
package effect

// Effect is a NavigateTo or a ShowConfirmation.
type Effect interface {
	effect()
}

// NavigateTo asks the shell to send the browser to URL.
type NavigateTo struct {
	URL string
}

// ShowConfirmation asks the shell to show Message to the user once.
type ShowConfirmation struct {
	Message string
}

func (NavigateTo) effect()       {}
func (ShowConfirmation) effect() {}
