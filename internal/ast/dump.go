/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
    `bufio`
    `fmt`
    `io`
    `os`
    `path/filepath`
    `strings`
)

// DumpTree writes the subtree as an indented text listing. The output is
// deterministic, so two dumps of structurally identical trees compare equal
// byte for byte.
func DumpTree(w io.Writer, root Node) error {
    return dumpNode(w, root, 0)
}

func dumpNode(w io.Writer, n Node, depth int) error {
    if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.String()); err != nil {
        return err
    }

    var err error
    n.EachChild(func(ch Node) {
        if err == nil {
            err = dumpNode(w, ch, depth+1)
        }
    })
    return err
}

// DumpTreeString renders the dump in memory; used by tests to compare trees
// across passes.
func DumpTreeString(root Node) string {
    var sb strings.Builder
    _ = DumpTree(&sb, root)
    return sb.String()
}

// DumpTreeFile dumps the subtree under the given path, creating the parent
// directory if needed.
func DumpTreeFile(path string, root Node) error {
    if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
        return err
    }

    fp, err := os.Create(path)
    if err != nil {
        return err
    }
    defer fp.Close()

    bw := bufio.NewWriter(fp)
    if err := DumpTree(bw, root); err != nil {
        return err
    }
    return bw.Flush()
}
