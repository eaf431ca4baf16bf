package radix

import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"

// Defaultsettings for radix tree instances.
//
// "cache.enable" (bool, default: true)
//		Keep recently accessed node records in memory, shared by
//		every tree bound to the same store. The first tree
//		constructed against a store fixes the cache configuration
//		for that store.
//
// "cache.capacity" (int64, default: freeRAM/100)
//		Approximate upper bound, in bytes, on cached node records.
//
// "allocator.reuseids" (bool, default: true)
//		Recycle node ids freed by deletions before drawing new
//		ordinals from the persisted counter. The recycle pool lives
//		in process memory only, ids pending in it are lost on
//		restart.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	return s.Settings{
		"cache.enable":       true,
		"cache.capacity":     int64(free / 100),
		"allocator.reuseids": true,
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
