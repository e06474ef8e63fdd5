// Package request contains the service request aggregate and its lifecycle.
//
// A Request is created by a customer (the applicant) for data that a company
// (the beneficiary) will acquire through one of its satellites. It then moves
// through regulator approval, ground station hand-off, satellite confirmation,
// data download and payment before it is closed:
//
//	AWAITING_APPROVAL ──> APPROVED ──> SEND_TO_STATION ──> RECEIVED_BY_STATION
//	       │                                                        │
//	       │              CLOSED <── READY_FOR_PAYMENT <── RECEIVING_DATA <── SATELLITE_CONFIRMATION
//	       │
//	       └──> REJECTED (also reachable from every non-terminal state except APPROVED)
//
// CLOSED and REJECTED are terminal. Every successful transition records exactly
// one domain Event on the aggregate; persistence adapters hand those events to
// subscribers once the surrounding unit of work has committed.
package request
