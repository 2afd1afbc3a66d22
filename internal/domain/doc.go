// Package domain defines core data models, errors and interfaces shared
// across the module. It contains plain types and contracts only.
package domain
