/*
Package ddsplane implements a reversible byte-plane transform for DXT1/BC1
compressed texture data in DDS containers.

Every DXT1 block is 8 bytes: two packed RGB565 color endpoints followed by a
4-byte 2-bit-per-texel index bitmap. Transform rewrites the block region so
that all endpoint fields come first, then all index fields, both in block
order; the header is copied verbatim and the total length never changes.
Grouping structurally similar fields raises the redundancy a general-purpose
compressor can exploit. Untransform is the exact byte-level inverse,
reconstructing the block interleaving from the image geometry declared in
the header.

The package also provides file-level operations with atomic output staging,
a concurrent batch driver for directory trees, and an in-memory probe that
reports how much zstd and LZ4 gain from the transform on a given file.
*/
package ddsplane
