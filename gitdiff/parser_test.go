package gitdiff_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/foldview"
	"github.com/fwojciec/foldview/gitdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_EmptyInput(t *testing.T) {
	t.Parallel()

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, diff.Files)
}

func TestParser_Parse_ModifiedFile(t *testing.T) {
	t.Parallel()

	input := `diff --git a/main.go b/main.go
index 1234567..abcdefg 100644
--- a/main.go
+++ b/main.go
@@ -1,5 +1,6 @@ package main
 package main

 func main() {
-	println("hello")
+	println("hello world")
+	println("goodbye")
 }
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	// go-gitdiff strips a/ and b/ prefixes
	assert.Equal(t, "main.go", f.Path)

	require.Len(t, f.Chunks, 4)

	assert.Equal(t, foldview.Unchanged, f.Chunks[0].Kind)
	assert.Equal(t, "package main\n\nfunc main() {\n", f.Chunks[0].Text)

	assert.Equal(t, foldview.Deleted, f.Chunks[1].Kind)
	assert.Equal(t, "\tprintln(\"hello\")\n", f.Chunks[1].Text)

	assert.Equal(t, foldview.Inserted, f.Chunks[2].Kind)
	assert.Equal(t, "\tprintln(\"hello world\")\n\tprintln(\"goodbye\")\n", f.Chunks[2].Text)

	assert.Equal(t, foldview.Unchanged, f.Chunks[3].Kind)
	assert.Equal(t, "}\n", f.Chunks[3].Text)
}

func TestParser_Parse_AddedFile(t *testing.T) {
	t.Parallel()

	input := `diff --git a/new.go b/new.go
new file mode 100644
index 0000000..1234567
--- /dev/null
+++ b/new.go
@@ -0,0 +1,3 @@
+package main
+
+func hello() {}
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	assert.Equal(t, "new.go", f.Path)

	require.Len(t, f.Chunks, 1)
	assert.Equal(t, foldview.Inserted, f.Chunks[0].Kind)
	assert.Equal(t, "package main\n\nfunc hello() {}\n", f.Chunks[0].Text)
}

func TestParser_Parse_DeletedFile(t *testing.T) {
	t.Parallel()

	input := `diff --git a/old.go b/old.go
deleted file mode 100644
index 1234567..0000000
--- a/old.go
+++ /dev/null
@@ -1,2 +0,0 @@
-package main
-
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	assert.Equal(t, "old.go", f.Path, "deleted files keep their pre-image path")

	require.Len(t, f.Chunks, 1)
	assert.Equal(t, foldview.Deleted, f.Chunks[0].Kind)
	assert.Equal(t, "package main\n\n", f.Chunks[0].Text)
}

func TestParser_Parse_RenamedFile(t *testing.T) {
	t.Parallel()

	input := `diff --git a/old.go b/new.go
similarity index 100%
rename from old.go
rename to new.go
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	assert.Equal(t, "new.go", f.Path)
	assert.Empty(t, f.Chunks)
}

func TestParser_Parse_BinaryFile(t *testing.T) {
	t.Parallel()

	input := `diff --git a/image.png b/image.png
new file mode 100644
index 0000000..1234567
Binary files /dev/null and b/image.png differ
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	assert.Equal(t, "image.png", f.Path)
	assert.Empty(t, f.Chunks)
}

func TestParser_Parse_MultipleFiles(t *testing.T) {
	t.Parallel()

	input := `diff --git a/a.go b/a.go
index 1234567..abcdefg 100644
--- a/a.go
+++ b/a.go
@@ -1 +1 @@
-old
+new
diff --git a/b.go b/b.go
new file mode 100644
index 0000000..1234567
--- /dev/null
+++ b/b.go
@@ -0,0 +1 @@
+content
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 2)

	assert.Equal(t, "a.go", diff.Files[0].Path)
	require.Len(t, diff.Files[0].Chunks, 2)
	assert.Equal(t, foldview.Deleted, diff.Files[0].Chunks[0].Kind)
	assert.Equal(t, foldview.Inserted, diff.Files[0].Chunks[1].Kind)

	assert.Equal(t, "b.go", diff.Files[1].Path)
	require.Len(t, diff.Files[1].Chunks, 1)
	assert.Equal(t, foldview.Inserted, diff.Files[1].Chunks[0].Kind)
}

func TestParser_Parse_CoalescesAcrossHunks(t *testing.T) {
	t.Parallel()

	input := `diff --git a/f.txt b/f.txt
index 1111111..2222222 100644
--- a/f.txt
+++ b/f.txt
@@ -1,3 +1,3 @@
-a
+A
 b
 c
@@ -8,3 +8,3 @@
 h
-i
+I
 j
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	require.Len(t, f.Chunks, 6)

	// Trailing context of the first hunk and leading context of the second
	// merge into one run; the omitted lines between them are simply absent.
	assert.Equal(t, foldview.Unchanged, f.Chunks[2].Kind)
	assert.Equal(t, "b\nc\nh\n", f.Chunks[2].Text)

	assert.Equal(t, foldview.Deleted, f.Chunks[3].Kind)
	assert.Equal(t, "i\n", f.Chunks[3].Text)
}

func TestParser_Parse_NoNewlineAtEOF(t *testing.T) {
	t.Parallel()

	input := `diff --git a/file.txt b/file.txt
index 1234567..abcdefg 100644
--- a/file.txt
+++ b/file.txt
@@ -1 +1 @@
-old
\ No newline at end of file
+new
\ No newline at end of file
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	require.Len(t, f.Chunks, 2)

	assert.Equal(t, "old", f.Chunks[0].Text, "final line keeps no trailing separator")
	assert.Equal(t, "new", f.Chunks[1].Text)
}

func TestParser_Parse_MalformedInput(t *testing.T) {
	t.Parallel()

	// go-gitdiff returns error for malformed git headers
	input := `diff --git a/file.go
@@ -1,1 +1,1 @@ incomplete header
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Nil(t, diff)
}

func TestParser_Parse_ModeChange(t *testing.T) {
	t.Parallel()

	input := `diff --git a/script.sh b/script.sh
old mode 100644
new mode 100755
`

	p := gitdiff.NewParser()

	diff, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, diff.Files, 1)

	f := diff.Files[0]
	assert.Equal(t, "script.sh", f.Path)
	assert.Empty(t, f.Chunks)
}
