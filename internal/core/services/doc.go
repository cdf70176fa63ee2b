// Package services implements the driving ports on top of the driven ports.
// Services hold no transport or storage logic themselves; they validate
// input, orchestrate the adapters and apply domain logic.
package services
