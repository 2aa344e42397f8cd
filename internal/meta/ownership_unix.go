//go:build unix

package meta

import (
	"io/fs"
	"os/user"
	"strconv"
	"sync"
	"syscall"
)

var (
	ownerCacheMu sync.Mutex
	userNames    = map[uint32]string{}
	groupNames   = map[uint32]string{}
)

// ownership resolves the owner and group names of an entry. Lookups go
// through a process-local cache: listings hit the same handful of ids
// over and over.
func ownership(info fs.FileInfo) (string, string) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", ""
	}

	ownerCacheMu.Lock()
	defer ownerCacheMu.Unlock()

	owner, ok := userNames[stat.Uid]
	if !ok {
		owner = strconv.FormatUint(uint64(stat.Uid), 10)
		if u, err := user.LookupId(owner); err == nil {
			owner = u.Username
		}
		userNames[stat.Uid] = owner
	}

	group, ok := groupNames[stat.Gid]
	if !ok {
		group = strconv.FormatUint(uint64(stat.Gid), 10)
		if g, err := user.LookupGroupId(group); err == nil {
			group = g.Name
		}
		groupNames[stat.Gid] = group
	}

	return owner, group
}
