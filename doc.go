/*
Package lrtab is a toolbox for constructing canonical LR parser tables.

Given a context-free grammar, lrtab computes the canonical collection of LR(0)
or LR(1) item sets and derives the decision tables of a table-driven
shift/reduce parser from it. Package structure is as follows:

■ grammar: Package grammar implements symbols, rules and grammars, including
grammar augmentation and the frozen symbol numbering used as table columns.

■ lr: Package lr implements items, item sets, FIRST sets and the LR(0) and LR(1)
table builders.

■ scanner: Package scanner provides tokenizers producing terminal ids for a
set of parser tables.

■ driver: Package driver implements a table-driven parser which consumes
nothing but the tables built by package lr.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrtab
