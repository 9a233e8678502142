// Package ui provides the Bubble Tea terminal interface for browsing
// amphibian photos.
//
// The Model subscribes to a PhotoSource (normally *state.PhotosViewModel)
// and renders whatever UIState it last received:
//
//   - Loading: a spinner
//   - Success: the photo list with a detail pane for the selection, or
//     "No amphibians found." for an empty listing
//   - Error: a short failure message and a hint to press r
//
// The UI never fetches on its own. The retry key calls Refresh on the
// source, throttled by a token bucket so a held key cannot flood the server.
//
// Other views and settings:
//
//   - l opens the application log, coloured by level (see logtail)
//   - T cycles the theme and d hides the detail pane; both are saved to prefs
//
// RenderPlain writes a settled state as text for non-interactive use.
package ui
