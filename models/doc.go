// Package models holds the data types shared across the dental-site
// packages: the clinic configuration record, its presentation views,
// booking requests and records, admin tokens and build metadata.
package models
