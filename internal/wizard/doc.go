// Package wizard collects the column layout of a table interactively.
//
// The wizard moves through a fixed sequence of phases modelled by [State]:
// column counts, then one header per column, then the variants of every
// input column. [Run] drives a State with questions asked through a
// [Prompter]; [FormPrompter] asks them with charmbracelet/huh forms.
//
// The result feeds table.Generator directly.
package wizard
