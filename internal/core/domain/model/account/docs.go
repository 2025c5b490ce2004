// Package account provides the identity records the fulfillment ledger keeps
// about its participants: customer profiles and admin records. Both are flat
// keyed records with no state machine; the admin registry additionally backs
// the capability oracle consulted before administrative operations.
package account
