// Package models defines the domain records of Life in Cubes.
//
// # Records
//
//   - User: a registered account, identified by a unique username
//   - Profile: the user's birth date, the origin of every week index
//   - Settings: display preferences (theme, week start convention)
//   - Event: an annotation placed on one week cell and one day inside it
//   - Tag: a free-form label shared across events
//   - Category: the fixed catalogue an event's icon and default color come from
//
// # Design Principles
//
//  1. Records hold plain data; grid arithmetic lives in weekgrid.
//  2. Relationships use ID strings, never pointers.
//  3. Timestamps are Unix seconds.
package models
