package config

const homePage = `# Layout drawer

A page inside a responsive layout with a drawer on each side.

- Widen the terminal past the breakpoint and the left drawer docks.
- Narrow it and the drawer turns into an overlay with a backdrop.
- Drag from the left edge to pull it open, drag it back to close.
`

const drawersPage = `# Drawers

| Key | Action |
|-----|--------|
| ` + "`[`" + ` | toggle left drawer |
| ` + "`]`" + ` | toggle right drawer |
| ` + "`/`" + ` | filter navigation |
| ` + "`y`" + ` | copy this page |

Docked drawers reserve room in the layout and push the page aside.
Overlay drawers float above it.
`

const gesturesPage = `# Gestures

Swipes commit once they travel past the swipe threshold. A shorter swipe
snaps back. Clicking the backdrop closes a mobile drawer.
`
