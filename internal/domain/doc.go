// Package domain contains the core business entities of the task API. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
