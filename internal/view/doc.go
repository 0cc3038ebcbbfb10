// Package view turns dashboard state into a render-ready model: one of the
// loading, error or ready states, the sortable header cells and the formatted
// table rows. It has no toolkit dependency so the rendering rules can be
// tested without a window.
package view
