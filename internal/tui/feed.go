package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"

	"attackmap/internal/threat"
)

// attackItem adapts one attack record to the sidebar list.
type attackItem struct {
	a threat.Attack
}

func (it attackItem) Title() string {
	return fmt.Sprintf("%s → %s  %s", it.a.Source.ID, it.a.Target.ID, it.a.Type)
}

func (it attackItem) Description() string {
	return fmt.Sprintf("[%s] %s", it.a.Severity, it.a.Description)
}

func (it attackItem) FilterValue() string {
	return it.a.Source.Name + " " + it.a.Target.Name + " " + it.a.Type + " " + it.a.Severity.String()
}

func attackItems(feed *threat.Feed) []list.Item {
	items := make([]list.Item, len(feed.Attacks))
	for i, a := range feed.Attacks {
		items[i] = attackItem{a: a}
	}
	return items
}

func attackColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "source", Width: 18},
		{Title: "target", Width: 18},
		{Title: "severity", Width: 9},
		{Title: "type", Width: 12},
	}
}

func attackRows(feed *threat.Feed) []table.Row {
	rows := make([]table.Row, len(feed.Attacks))
	for i, a := range feed.Attacks {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			a.Source.Name,
			a.Target.Name,
			a.Severity.String(),
			a.Type,
		}
	}
	return rows
}
