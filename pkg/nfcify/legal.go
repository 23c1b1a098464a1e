package nfcify

// LegalNotice provides license notices for nfcify itself and any third-party
// dependencies.
const LegalNotice = `nfcify

Copyright (c) 2026-present The nfcify Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

================================================================================
nfcify depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go x/sys and x/text subrepositories.

https://github.com/golang/go
https://github.com/golang/sys
https://github.com/golang/text

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Used under the terms of the 2-Clause BSD License.

--------------------------------------------------------------------------------

Cobra and pflag

https://github.com/spf13/cobra
https://github.com/spf13/pflag

Used under the terms of the Apache License, Version 2.0 (Cobra) and the
3-Clause BSD License (pflag).

--------------------------------------------------------------------------------

color, go-colorable, and go-isatty

https://github.com/fatih/color
https://github.com/mattn/go-colorable
https://github.com/mattn/go-isatty

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

uuid

https://github.com/google/uuid

Used under the terms of the 3-Clause BSD License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Used under the terms of the Apache License, Version 2.0.
`
