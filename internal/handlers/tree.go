// Package handlers binds the generators to menu actions.
package handlers

import "github.com/jwebster45206/ttrpg-tools/internal/menu"

// Tree builds the main menu from the given sections. The session adds the
// trailing Quit entry.
func Tree(sections ...*menu.Node) *menu.Node {
	return &menu.Node{ID: "main", Label: "Main Menu", Children: sections}
}
