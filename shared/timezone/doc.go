// Package timezone provides timezone utilities for the application.
//
// Reservation times arrive without zone information and are interpreted in
// the application timezone, configured via the APP_TIMEZONE environment
// variable (standard IANA names such as "UTC" or "Asia/Tashkent"). The
// location is resolved once at package initialization.
//
// Usage:
//
//	now := timezone.Now()                       // current time in app timezone
//	t, err := timezone.Parse(layout, value)     // parse in app timezone
//	s := timezone.Format(t, layout)             // format in app timezone
package timezone
