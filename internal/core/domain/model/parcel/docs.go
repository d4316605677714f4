// Package parcel provides the package aggregate of the warehouse domain:
// the physical package moving through intake, storage and delivery.
//
// The package includes:
//   - Parcel: the aggregate root holding identity, barcode, dimensions,
//     destination, category and location assignment, and lifecycle status
//   - Status: a state machine with an explicit transition table
//     (Received -> Stored -> InTransit -> Delivered, with Stored -> Delivered
//     as a shortcut; Delivered is terminal)
//   - Dimensions: a value object for weight and physical size
//
// Key business rules:
//   - barcodes are unique external identifiers and are caller-supplied
//   - a parcel references a storage location exactly while its status
//     occupies space; delivery clears the reference
//   - status transitions outside the table are rejected
package parcel
