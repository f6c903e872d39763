// Package timezone keeps the application timezone used for presenting
// timestamps and for bucketing report months. Times bound to the store go
// through Storable and are always UTC.
//
// Usage:
//
//	timezone.Init(cfg.App.Timezone)     // once at startup
//	now := timezone.Now()               // current time in the app timezone
//	month := timezone.StartOfMonth(now) // first instant of the month
//
// Names must be IANA zones such as "UTC" or "Asia/Jakarta". An empty or
// unknown name falls back to UTC.
package timezone
