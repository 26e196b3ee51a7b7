/*
Package css provides option types for CSS values used by grid columns.

DimenT wraps lengths (gutter paddings) and FlexT wraps the value of the
CSS flex property. FlexT is matched in the usual way:

    var basis string
    switch m := f.Match(); m {
    case m.Length(&basis):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css
