package sdlhost

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 8

// textureCache keeps icon textures per screen name, evicting the least
// recently used once full.
type textureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		c.touch(key)
		return texture
	}
	return nil
}

func (c *textureCache) set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
