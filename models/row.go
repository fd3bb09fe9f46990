package models

// Row is a single record returned by the external table store. The store
// owns the schema, so rows pass through this service as opaque key/value
// documents and are relayed to clients as-is.
type Row map[string]any
