package app

import (
	"github.com/vk/pluginseq/internal/registry"
	"github.com/vk/pluginseq/modules/fileloader"
	"github.com/vk/pluginseq/modules/markdown"
	"github.com/vk/pluginseq/modules/textwriter"
)

// coreModules are the built-in plugin modules registered when the caller
// does not supply its own set.
var coreModules = []registry.Module{
	&fileloader.Module{},
	&markdown.Module{},
	&textwriter.Module{},
}
