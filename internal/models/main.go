package models

// ModelRegistry lists every model subject to --auto-migrate. Production
// schemas come from the SQL migrations instead.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
}
