// Package medcorpus builds a reproducible corpus of patient-facing
// disease and condition articles. It crawls a fixed, pre-computed
// catalog of URLs at a polite pace, normalizes each page's markup into
// a hierarchical document model, and exports every document as both
// prose markdown and structured YAML for retrieval pipelines.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package medcorpus
