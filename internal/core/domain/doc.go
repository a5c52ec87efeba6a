// Package domain contains the core types for the community Q&A pipeline:
// community records, retrieval chunks, visualization metadata, and the
// formatting helpers shared by the section chunkers.
package domain
