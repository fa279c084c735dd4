/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import "github.com/suparena/iconregistry/registry"

// Keys of the bundled catalogue. TestBundledKeysResolve keeps this list and
// the manifests in step.
const (
	// Preset categories
	Jobs           registry.Key = "jobs"
	GrandCompanies registry.Key = "grand-companies"
	Seasons        registry.Key = "seasons"
	Events         registry.Key = "events"
	Community      registry.Key = "community"
	Folder         registry.Key = "folder"

	// Actions
	Edit   registry.Key = "edit"
	Delete registry.Key = "delete"
	Link   registry.Key = "link"
	Write  registry.Key = "write"

	// Status
	Warning registry.Key = "warning"
	Locked  registry.Key = "locked"
	Lock    registry.Key = "lock"
	Empty   registry.Key = "empty"
	Success registry.Key = "success"

	// UI elements
	Camera   registry.Key = "camera"
	Network  registry.Key = "network"
	Globe    registry.Key = "globe"
	Tutorial registry.Key = "tutorial"
	Search   registry.Key = "search"

	// System
	Rocket    registry.Key = "rocket"
	Error     registry.Key = "error"
	Settings  registry.Key = "settings"
	Package   registry.Key = "package"
	Announcer registry.Key = "announcer"
	Toast     registry.Key = "toast"
	Build     registry.Key = "build"
	Import    registry.Key = "import"

	// Shared UI and empty states
	Document   registry.Key = "document"
	Book       registry.Key = "book"
	EmptyInbox registry.Key = "empty-inbox"
)

// AllKeys lists every bundled key constant in catalogue order.
var AllKeys = []registry.Key{
	Jobs, GrandCompanies, Seasons, Events, Community, Folder,
	Edit, Delete, Link, Write,
	Warning, Locked, Lock, Empty, Success,
	Camera, Network, Globe, Tutorial, Search,
	Rocket, Error, Settings, Package, Announcer, Toast, Build, Import,
	Document, Book, EmptyInbox,
}
