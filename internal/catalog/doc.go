// Package catalog is the registry of tools and blog posts.
//
// Tools come from a tools.yaml file and posts from posts/*.md files with
// YAML front matter. Both are embedded in the binary; a posts directory on
// disk can replace the embedded posts. Load checks that every ToolID is
// described exactly once and that every cross reference resolves.
package catalog
