/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
)

// DocumentLocator implementations
// ===============================

/*
MemoryDocumentLocator holds a given set of documents in memory.
*/
type MemoryDocumentLocator struct {
	Documents map[string]string
}

/*
Resolve a given document name and return its source text.
*/
func (dl *MemoryDocumentLocator) Resolve(path string) (string, error) {

	res, ok := dl.Documents[path]

	if !ok {
		return "", fmt.Errorf("Could not find document: %v", path)
	}

	return res, nil
}

/*
FileDocumentLocator tries to locate files on disk relative to a root
directory and provide them as documents.
*/
type FileDocumentLocator struct {
	Root string // Relative root path
}

/*
Resolve a given document name and return its source text.
*/
func (dl *FileDocumentLocator) Resolve(path string) (string, error) {
	var res string

	docPath := filepath.Clean(filepath.Join(dl.Root, path))

	ok, err := isSubpath(dl.Root, docPath)

	if err == nil && !ok {
		err = fmt.Errorf("Document path %v is outside of root path %v", path, dl.Root)
	}

	if err == nil {
		var content []byte

		if content, err = ioutil.ReadFile(docPath); err == nil {
			res = string(content)
		}
	}

	return res, err
}

/*
isSubpath checks if a given path is a subpath of another given path.
*/
func isSubpath(parent string, child string) (bool, error) {

	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false, err
	}

	absChild, err := filepath.Abs(child)
	if err != nil {
		return false, err
	}

	if absParent == absChild {
		return true, nil
	}

	return strings.HasPrefix(absChild, absParent+string(filepath.Separator)), nil
}
