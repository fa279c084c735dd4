/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package icons

import _ "embed"

// emojiManifest holds the icons that replace emoji across the web app.
//
//go:embed assets/emoji-icons.yaml
var emojiManifest []byte

// uiManifest holds the shared UI and empty-state icons. Several keys repeat
// emoji-collection keys with newer markup.
//
//go:embed assets/ui-icons.yaml
var uiManifest []byte

// bundledManifests lists the embedded manifests in merge order.
var bundledManifests = []struct {
	name string
	data []byte
}{
	{name: "emoji-icons.yaml", data: emojiManifest},
	{name: "ui-icons.yaml", data: uiManifest},
}
