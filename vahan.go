// Package vahan provides a vehicle-registration (RC) lookup service.
// It fetches a third-party registration detail page, extracts a fixed
// set of labeled fields into a normalized record, and gates access
// with a key/quota layer.
//
// This package contains domain types, interfaces, and pure domain
// logic following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, zap/).
package vahan
