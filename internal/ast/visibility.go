package ast

// Visibility описывает видимость модуля (private/pub/pub(crate)/pub(super)).
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
	VisCrate
	VisSuper
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "pub"
	case VisCrate:
		return "pub(crate)"
	case VisSuper:
		return "pub(super)"
	default:
		return ""
	}
}
