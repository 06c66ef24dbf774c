package viewmodel

type Layout struct {
	Page    string
	Title   string
	IsDebug bool
	IsError bool
	Msg     string
}
