// Package web serves the song widget to a browser with server-side rendering.
//
// # Architecture
//
// Each browser session (a UUID cookie) owns a [widget.Controller] whose view is an in-memory HTML renderer.
// A request locks its session, runs one controller event and writes back the fragment the embedded script
// swaps into the page:
//
//	GET  /                    → full page
//	POST /songs               → add the form field "song"; answers with the #widget fragment
//	POST /songs/remove        → remove the form field "song"; answers with the #widget fragment
//	POST /cards/{id}/like     → like a card; answers with that card carrying the flash-green class
//	POST /cards/{id}/dislike  → dislike a card; answers with that card carrying the flash-red class
//	GET  /api/feedback        → in-memory reaction counts (when a tally is configured)
//	GET  /static/*            → app.js, style.css
//	GET  /healthz             → liveness
//
// Requests without the [FragmentHeader] (plain form posts) are redirected to / after the mutation.
//
// # Pulses
//
// The pulse class is removed in the browser by an animationend listener registered with {once: true}. Later
// renders of the same card never carry the class.
//
// # State
//
// Sessions live only in memory and expire after an idle TTL. There is no shared song state between sessions;
// only the feedback handler is shared.
package web
